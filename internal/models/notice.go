package models

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient message for the user, like a toast.
type Notice struct {
	Kind NoticeKind
	Text string
}

func Success(text string) Notice {
	return Notice{Kind: NoticeSuccess, Text: text}
}

func Failure(text string) Notice {
	return Notice{Kind: NoticeError, Text: text}
}
