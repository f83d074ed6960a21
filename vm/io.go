package vm

import (
	"bufio"
	"io"
	"os"
	"strings"
)

func registerIO() {
	register(InputString, "InputString", func(in *Input, out *Result) {
		line, err := bufio.NewReader(in.ConsoleInput).ReadString('\n')
		if err != nil && err != io.EOF {
			panic(newFault(IoFailure, "Failed to read from the console. %s", err.Error()))
		}
		out.ReturnedObject = NewString(strings.TrimRight(line, "\r\n"))
	})

	register(PrintString, "PrintString", func(in *Input, out *Result) {
		s := as[*String](in.GetObject(-1))
		if _, err := io.WriteString(in.ConsoleOutput, s.Utf8()); err != nil {
			panic(newFault(IoFailure, "Failed to write to the console. %s", err.Error()))
		}
	})

	register(FlushConsoleOutput, "FlushConsoleOutput", func(in *Input, out *Result) {
		if f, ok := in.ConsoleOutput.(interface{ Flush() error }); ok {
			if err := f.Flush(); err != nil {
				panic(newFault(IoFailure, "Failed to flush the console. %s", err.Error()))
			}
		}
	})

	register(ReadFileText, "ReadFileText", func(in *Input, out *Result) {
		path := as[*String](in.GetObject(-1)).Utf8()
		data, err := os.ReadFile(path)
		if err != nil {
			panic(translateFileError(err, path))
		}
		out.ReturnedObject = NewString(string(data))
	})

	register(ReadFileLines, "ReadFileLines", func(in *Input, out *Result) {
		path := as[*String](in.GetObject(-1)).Utf8()
		data, err := os.ReadFile(path)
		if err != nil {
			panic(translateFileError(err, path))
		}
		// Newlines are accepted in any of \n, \r, \r\n form (spec.md §6);
		// normalize to \n before splitting so all three are handled alike.
		normalized := strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(string(data))
		text := strings.TrimSuffix(normalized, "\n")
		b := NewObjectListBuilder()
		if text != "" {
			for _, line := range strings.Split(text, "\n") {
				b.Add(NewString(line))
			}
		}
		out.ReturnedObject = b.End()
	})

	register(WriteFileText, "WriteFileText", func(in *Input, out *Result) {
		path := as[*String](in.GetObject(-2)).Utf8()
		content := as[*String](in.GetObject(-1)).Utf8()
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			panic(translateFileError(err, path))
		}
	})

	register(WriteFileLines, "WriteFileLines", func(in *Input, out *Result) {
		path := as[*String](in.GetObject(-2)).Utf8()
		lines := as[*ObjectList](in.GetObject(-1))
		var b strings.Builder
		for i := 0; i < lines.Len(); i++ {
			b.WriteString(as[*String](lines.Get(i)).Utf8())
			b.WriteByte('\n')
		}
		if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
			panic(translateFileError(err, path))
		}
	})

	register(DeleteFile, "DeleteFile", func(in *Input, out *Result) {
		path := as[*String](in.GetObject(-1)).Utf8()
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			panic(translateFileError(err, path))
		}
	})
}
