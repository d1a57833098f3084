package assert

import "github.com/stride-anim/stride/serror"

func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(serror.New(message, args...))
	}
}
