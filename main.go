/*
Copyright © 2025 Noteleap Authors
*/
package main

import "github.com/noteleap/noteleap/cmd"

func main() {
	cmd.Execute()
}
