package main

import (
	"fmt"
	"os"

	"jobconnect-backend/pkg/security"
)

func main() {
	password := "admin_password"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}

	hasher := security.NewHasher(3, 64*1024, 4)
	hash, err := hasher.Hash(password)
	if err != nil {
		fmt.Printf("Error generating hash: %v\n", err)
		return
	}
	fmt.Printf("Password: %s\n", password)
	fmt.Printf("Argon2id Hash: %s\n", hash)
	fmt.Printf("\nUse this hash when seeding the first admin:\n")
	fmt.Printf("INSERT INTO admins (full_name, email, password_hash, role)\n")
	fmt.Printf("VALUES ('Super Admin', 'admin@jobconnect.local', '%s', 'super_admin');\n", hash)
}
