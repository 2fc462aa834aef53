package main

import "svw.info/sudokugame/cmd"

func main() {
	cmd.Execute()
}
