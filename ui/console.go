// Package ui holds the small console helpers shared by the plain CLI
// front end.
package ui

import "fmt"

func DebugPrintf(enabled bool, format string, a ...interface{}) {
	if enabled {
		fmt.Print("\033[33m")
		fmt.Printf("[DEBUG] "+format, a...)
		fmt.Print("\033[0m")
	}
}

func GreenPrintf(format string, a ...interface{}) {
	fmt.Print("\033[92m")
	fmt.Printf(format, a...)
	fmt.Print("\033[0m")
}

func WarningPrintf(format string, a ...interface{}) {
	fmt.Print("\033[93m")
	fmt.Printf(format, a...)
	fmt.Print("\033[0m")
}

func ClearScreen() {
	fmt.Print("\033[2J\033[1;1H")
}
