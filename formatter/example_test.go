package formatter_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/philipp01105/ctxlog/core"
	"github.com/philipp01105/ctxlog/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	r := &core.Record{
		Time:      time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:     core.InfoLevel,
		Message:   "hello world",
		RequestID: "req-7",
	}

	out, _ := f.Format(r)
	fmt.Print(string(out))
	// Output:
	// 2026-01-15T12:00:00Z [INFO] hello world requestId=req-7
}

func ExampleNewJSONFormatter() {
	f := formatter.NewJSONFormatter(formatter.Config{})

	r := &core.Record{
		Time:     time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:    core.InfoLevel,
		Message:  "request handled",
		Metadata: core.Metadata{"status": 200},
	}

	out, _ := f.Format(r)
	fmt.Println(strings.Contains(string(out), `"level":"info"`))
	fmt.Println(strings.Contains(string(out), `"metadata":{"status":200}`))
	// Output:
	// true
	// true
}
