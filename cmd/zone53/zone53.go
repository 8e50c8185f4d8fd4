package main

import (
	zone53 "github.com/Catofes/Zone53/src"
)

var _version_ string

func main() {
	zone53.Do(_version_)
}
