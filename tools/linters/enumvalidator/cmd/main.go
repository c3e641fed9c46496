package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/LuizHNR/NebuloHub-Mongo/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
