// Package main provides the sportdb CLI application.
// sportdb builds and searches a sporting-goods catalog database.
package main

import (
	"github.com/sportdb/sportdb/cmd"
)

func main() {
	cmd.Execute()
}
