package scalar

import "github.com/TinyChain-Inc/tc-ir/id"

// OpRef is a reference to an operation invocation against a Subject. This
// is pure data; resolution is performed by the kernel, not by this
// package.
type OpRef interface {
	isOpRef()
	Subject() id.Subject
}

// OpGet is a GET op ref: resolve Subject with Key as the input.
type OpGet struct {
	Target id.Subject
	Key    Scalar
}

func (OpGet) isOpRef()               {}
func (o OpGet) Subject() id.Subject { return o.Target }

// OpPut is a PUT op ref: write Value at Key under Subject.
type OpPut struct {
	Target id.Subject
	Key    Scalar
	Value  Scalar
}

func (OpPut) isOpRef()               {}
func (o OpPut) Subject() id.Subject { return o.Target }

// OpPost is a POST op ref: invoke Subject with named Params.
type OpPost struct {
	Target id.Subject
	Params Map[Scalar]
}

func (OpPost) isOpRef()               {}
func (o OpPost) Subject() id.Subject { return o.Target }

// OpDelete is a DELETE op ref: remove Key under Subject.
type OpDelete struct {
	Target id.Subject
	Key    Scalar
}

func (OpDelete) isOpRef()               {}
func (o OpDelete) Subject() id.Subject { return o.Target }
