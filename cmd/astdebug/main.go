package main

import "github.com/grafana/astdebug/internal/astdebugcli"

func main() {
	astdebugcli.Run()
}
