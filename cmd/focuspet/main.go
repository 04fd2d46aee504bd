package main

import "github.com/oguzhankocabas81/focus-pet/cmd/focuspet/root"

func main() {
	root.Execute()
}
