// Command hashpw produces the Argon2id hash for the admin password, to be
// stored in ADMIN_PASSWORD_HASH. The password is read from stdin so it does
// not end up in shell history.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/batuhansemiz/portfolio-backend/internal/auth"
)

func main() {
	fmt.Fprint(os.Stderr, "Password: ")

	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("read password: %v", err)
	}
	password = strings.TrimRight(password, "\r\n")

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	fmt.Println(hash)
}
