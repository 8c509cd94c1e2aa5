package dataaccess

import "github.com/ltnstring/ltnstring-go/tnetstring"

func invalidArgument(format string, args ...interface{}) error {
	return tnetstring.Errorf(tnetstring.InvalidArgument, format, args...)
}

func invalidTNetstring(format string, args ...interface{}) error {
	return tnetstring.Errorf(tnetstring.InvalidTNetstring, format, args...)
}

func unsupportedTopLevel(format string, args ...interface{}) error {
	return tnetstring.Errorf(tnetstring.UnsupportedTopLevelDataStructure, format, args...)
}

func invalidChild(format string, args ...interface{}) error {
	return tnetstring.Errorf(tnetstring.InvalidChild, format, args...)
}

func keyNotFound(format string, args ...interface{}) error {
	return tnetstring.Errorf(tnetstring.KeyNotFound, format, args...)
}
