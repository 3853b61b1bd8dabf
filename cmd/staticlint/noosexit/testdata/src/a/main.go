package main

import (
	"fmt"
	"os"
	exit "os"
)

func main() {
	fmt.Println("start")
	os.Exit(1)   // want "direct call to os.Exit in main function of main package"
	exit.Exit(2) // want "direct call to os.Exit in main function of main package"

	defer func() {
		os.Exit(3)
	}()
}

func helper() {
	os.Exit(4)
}
