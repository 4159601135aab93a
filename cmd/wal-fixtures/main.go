package main

import "github.com/backbone81/wal-fixtures/cmd/wal-fixtures/cmd"

func main() {
	cmd.Execute()
}
