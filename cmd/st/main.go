package main

import "studytime/cmd/st/root"

func main() {
	root.Execute()
}
