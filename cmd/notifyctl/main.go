package main

import "github.com/ilindan-dev/channel-notifier/internal/cli"

func main() {
	cli.Execute()
}
