package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Pool  bool
	Parse bool
	Adopt bool
}

var d *debug

func init() {
	d = &debug{}
	d.Pool = boolEnv("MEMJSON_DEBUG_POOL")
	d.Parse = boolEnv("MEMJSON_DEBUG_PARSE")
	d.Adopt = boolEnv("MEMJSON_DEBUG_ADOPT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Pool() bool {
	return d.Pool
}
func Parse() bool {
	return d.Parse
}
func Adopt() bool {
	return d.Adopt
}
