package services

// Kind classifies a service failure so handlers can map it to an HTTP
// status without inspecting message strings.
type Kind int

const (
	KindInvalid Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func invalid(msg string) error      { return &Error{Kind: KindInvalid, Msg: msg} }
func unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Msg: msg} }
func forbidden(msg string) error    { return &Error{Kind: KindForbidden, Msg: msg} }
func notFound(msg string) error     { return &Error{Kind: KindNotFound, Msg: msg} }
func conflict(msg string) error     { return &Error{Kind: KindConflict, Msg: msg} }
