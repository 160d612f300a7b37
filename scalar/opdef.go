package scalar

import "github.com/TinyChain-Inc/tc-ir/id"

// OpDefClass projects an OpDef to one of the four verb labels, purely for
// wire labelling; it carries no behavior of its own.
type OpDefClass int

const (
	ClassGet OpDefClass = iota
	ClassPut
	ClassPost
	ClassDelete
)

func (c OpDefClass) Label() id.Path {
	switch c {
	case ClassGet:
		return OpDefGetLabel
	case ClassPut:
		return OpDefPutLabel
	case ClassPost:
		return OpDefPostLabel
	case ClassDelete:
		return OpDefDeleteLabel
	default:
		return nil
	}
}

// Binding is a single let-binding in an OpDef's form: a name bound to the
// Scalar expression that produces it.
type Binding struct {
	Name  id.Id
	Value Scalar
}

// OpDef is the inline form of an operation body: an ordered list of
// let-bindings (its "form"), plus the verb-specific input parameter
// names a caller supplies on invocation.
type OpDef interface {
	isOpDef()
	Form() []Binding
	Class() OpDefClass
}

// LastId returns the name of the last binding in def's form, or ok=false if
// the form is empty.
func LastId(def OpDef) (id.Id, bool) {
	form := def.Form()
	if len(form) == 0 {
		return "", false
	}
	return form[len(form)-1].Name, true
}

// OpDefGet is a GET operation body: KeyName names the single input
// parameter bound on invocation.
type OpDefGet struct {
	KeyName id.Id
	Bindings []Binding
}

func (d OpDefGet) isOpDef()          {}
func (d OpDefGet) Form() []Binding   { return d.Bindings }
func (d OpDefGet) Class() OpDefClass { return ClassGet }

// OpDefPut is a PUT operation body: KeyName and ValueName name the two
// input parameters bound on invocation.
type OpDefPut struct {
	KeyName  id.Id
	ValueName id.Id
	Bindings []Binding
}

func (d OpDefPut) isOpDef()          {}
func (d OpDefPut) Form() []Binding   { return d.Bindings }
func (d OpDefPut) Class() OpDefClass { return ClassPut }

// OpDefPost is a POST operation body: the caller-supplied parameter map is
// already named, so no input names are declared here.
type OpDefPost struct {
	Bindings []Binding
}

func (d OpDefPost) isOpDef()          {}
func (d OpDefPost) Form() []Binding   { return d.Bindings }
func (d OpDefPost) Class() OpDefClass { return ClassPost }

// OpDefDelete is a DELETE operation body: KeyName names the single input
// parameter bound on invocation.
type OpDefDelete struct {
	KeyName id.Id
	Bindings []Binding
}

func (d OpDefDelete) isOpDef()          {}
func (d OpDefDelete) Form() []Binding   { return d.Bindings }
func (d OpDefDelete) Class() OpDefClass { return ClassDelete }
