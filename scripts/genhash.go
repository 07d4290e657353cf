package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	passwords := map[string]string{
		"john@example.com":  "devdemo123",
		"sara@example.com":  "devdemo456",
		"admin@example.com": "devadmin789",
	}

	for email, pass := range passwords {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), 10)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Email: %s\nPassword: %s\nHash: %s\n\n", email, pass, string(hash))
	}
}
