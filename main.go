package main

import "jiralog/cmd"

func main() {
	cmd.Execute()
}
