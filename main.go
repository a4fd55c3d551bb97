package main

import (
	"github.com/zanyar-dev/botarium/cmd"
)

func main() {
	cmd.Execute()
}
