package dev

import (
	"fmt"
	"log"
	"os"
)

var debugSet = os.Getenv("VISO_DEBUG")
var debugPath = os.Getenv("VISO_DEBUG_PATH")

// Debug appends msg to the debug log when VISO_DEBUG is set.
func Debug(msg string) {
	if debugSet == "" {
		return
	}
	if debugPath == "" {
		debugPath = "viso.log"
	}
	file, err := os.OpenFile(debugPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return
	}
	defer file.Close()
	logger := log.New(file, "", log.Ldate|log.Lmicroseconds)
	logger.Printf("%q", msg)
}

// Debugf is Debug with formatting.
func Debugf(format string, args ...any) {
	if debugSet == "" {
		return
	}
	Debug(fmt.Sprintf(format, args...))
}
