package vm

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrorCode is the closed set of recoverable fault classes an intrinsic can
// raise. A user program can catch any of these with try/catch; the two
// "Internal…" codes indicate a code-generator or interpreter bug rather than
// a user mistake and are not normally caught.
type ErrorCode int

const (
	InvalidArgument ErrorCode = iota
	ListIndexOutOfRange
	ListIsEmpty
	MapKeyNotFound
	ValueNotPresent
	InvalidLocaleName
	InvalidTimeZone
	InternalIcuError
	InternalTypeConfusion
	FileNotFound
	AccessDenied
	PathTooLong
	DiskFull
	PathIsDirectory
	IoFailure

	// Generic indicates a fault that did not originate as a Fault at all —
	// some other Go panic escaped an intrinsic and was caught at the
	// dispatch boundary. Its numeric value matches the source's "code = -1"
	// catch-all exactly.
	Generic ErrorCode = -1
)

func (c ErrorCode) String() string {
	switch c {
	case Generic:
		return "Generic"
	case InvalidArgument:
		return "InvalidArgument"
	case ListIndexOutOfRange:
		return "ListIndexOutOfRange"
	case ListIsEmpty:
		return "ListIsEmpty"
	case MapKeyNotFound:
		return "MapKeyNotFound"
	case ValueNotPresent:
		return "ValueNotPresent"
	case InvalidLocaleName:
		return "InvalidLocaleName"
	case InvalidTimeZone:
		return "InvalidTimeZone"
	case InternalIcuError:
		return "InternalIcuError"
	case InternalTypeConfusion:
		return "InternalTypeConfusion"
	case FileNotFound:
		return "FileNotFound"
	case AccessDenied:
		return "AccessDenied"
	case PathTooLong:
		return "PathTooLong"
	case DiskFull:
		return "DiskFull"
	case PathIsDirectory:
		return "PathIsDirectory"
	case IoFailure:
		return "IoFailure"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// Fault is the typed exception every intrinsic raises for a recoverable
// condition. It implements error so it can flow through ordinary Go
// plumbing, but the dispatcher (see dispatch.go) is the only place that
// catches one with recover — everywhere else a Fault is just an error.
type Fault struct {
	Code    ErrorCode
	Message string
}

func (f *Fault) Error() string { return f.Message }

// newFault builds a Fault with a formatted message, the Go analogue of the
// source's `throw Error(code, fmt::format(...))`.
func newFault(code ErrorCode, format string, args ...any) *Fault {
	return &Fault{Code: code, Message: fmt.Sprintf(format, args...)}
}

// translateFileError maps a POSIX-flavored file-system error to the fixed
// ErrorCode table in spec.md §4.2: ENOENT→FileNotFound, EACCES→AccessDenied,
// ENAMETOOLONG→PathTooLong, ENOSPC→DiskFull, EISDIR→PathIsDirectory,
// everything else→IoFailure with the system's strerror text.
func translateFileError(err error, path string) *Fault {
	if err == nil {
		return nil
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOENT:
			return newFault(FileNotFound, "The file %q does not exist.", path)
		case syscall.EACCES:
			return newFault(AccessDenied, "Access to the file %q was denied.", path)
		case syscall.ENAMETOOLONG:
			return newFault(PathTooLong, "The path %q is too long.", path)
		case syscall.ENOSPC:
			return newFault(DiskFull, "The disk containing the file %q is out of space.", path)
		case syscall.EISDIR:
			return newFault(PathIsDirectory, "The path %q is a directory.", path)
		default:
			return newFault(IoFailure, "Failed to access the file %q. %s", path, errno.Error())
		}
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return newFault(FileNotFound, "The file %q does not exist.", path)
	case errors.Is(err, fs.ErrPermission):
		return newFault(AccessDenied, "Access to the file %q was denied.", path)
	default:
		return newFault(IoFailure, "Failed to access the file %q. %s", path, err.Error())
	}
}
