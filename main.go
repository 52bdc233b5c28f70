package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/N-Adkins/lang/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the lang REPL, %s!\n", currentUser.Username)
	repl.Start(os.Stdin, os.Stdout)
}
