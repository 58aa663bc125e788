package sqllite

import (
	"fmt"
	"os"
	"sync/atomic"
	"testing"
)

var fileSeq int32 = 7000 // distinct db file per test

func runTestWithSetup(t *testing.T, testFunc func(t *testing.T)) {
	n := atomic.AddInt32(&fileSeq, 1)
	filename := fmt.Sprintf("reqman-test-%d.db", n)
	defer os.Remove(filename)

	os.Setenv("RMS_DATABASE_TYPE", "SQLLITE")
	os.Setenv("RMS_DATABASE_SQLLITE_FILE_NAME", filename)
	testFunc(t)
}
