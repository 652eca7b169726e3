package format

import (
	"regexp"
	"strings"
)

// XMLKind classifies a fragment produced by SplitXML.
type XMLKind int

const (
	// XMLText is anything that is not markup: stray text or whitespace.
	XMLText XMLKind = iota
	// XMLComment opens and closes a comment, CDATA section or DOCTYPE in one fragment.
	XMLComment
	// XMLCommentOpen opens a comment or CDATA section that continues in later fragments.
	XMLCommentOpen
	// XMLCommentClose closes a comment or CDATA section opened by an earlier fragment.
	XMLCommentClose
	// XMLPairedTag is a closing tag directly following the opening tag of the same element.
	XMLPairedTag
	// XMLOpenTag opens an element.
	XMLOpenTag
	// XMLInlineTag opens and closes an element in one fragment.
	XMLInlineTag
	// XMLCloseTag closes an element.
	XMLCloseTag
	// XMLSelfClosingTag is an empty element such as <br/>.
	XMLSelfClosingTag
	// XMLProcessingInstruction is a <?...?> instruction.
	XMLProcessingInstruction
	// XMLNamespaceDecl is an xmlns or xmlns:prefix attribute split out of its tag.
	XMLNamespaceDecl
)

var xmlKindNames = map[XMLKind]string{
	XMLText:                  "Text",
	XMLComment:               "Comment",
	XMLCommentOpen:           "CommentOpen",
	XMLCommentClose:          "CommentClose",
	XMLPairedTag:             "PairedTag",
	XMLOpenTag:               "OpenTag",
	XMLInlineTag:             "InlineTag",
	XMLCloseTag:              "CloseTag",
	XMLSelfClosingTag:        "SelfClosingTag",
	XMLProcessingInstruction: "ProcessingInstruction",
	XMLNamespaceDecl:         "NamespaceDecl",
}

func (k XMLKind) String() string {
	if name, ok := xmlKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

var (
	reInterTagSpace = regexp.MustCompile(`>\s*<`)
	reXMLBoundary   = regexp.MustCompile(`<|xmlns[:=]`)
	reElementStart  = regexp.MustCompile(`<\w`)
	reOpenName      = regexp.MustCompile(`^<(\w[\w:.,-]*)`)
	reCloseName     = regexp.MustCompile(`^</(\w[\w:.,-]*)`)
)

// SplitXML breaks text into fragments that each start at a tag or at a
// namespace declaration. Whitespace between adjacent tags is removed first.
// Empty fragments are never returned.
func SplitXML(text string) []string {
	text = reInterTagSpace.ReplaceAllString(text, "><")

	bounds := reXMLBoundary.FindAllStringIndex(text, -1)
	fragments := make([]string, 0, len(bounds)+1)

	start := 0
	for _, loc := range bounds {
		if loc[0] > start {
			fragments = append(fragments, text[start:loc[0]])
		}
		start = loc[0]
	}

	if start < len(text) {
		fragments = append(fragments, text[start:])
	}

	return fragments
}

// ClassifyXML assigns a kind to fragment. prev is the fragment emitted just
// before it ("" for the first one) and is only consulted to recognise a closing
// tag that immediately follows its own opening tag.
//
// Rules are evaluated in priority order and the first match wins.
func ClassifyXML(prev, fragment string) XMLKind {
	switch {
	case strings.Contains(fragment, "<!"):
		if closesComment(fragment) || strings.Contains(strings.ToUpper(fragment), "!DOCTYPE") {
			return XMLComment
		}
		return XMLCommentOpen
	case closesComment(fragment):
		return XMLCommentClose
	case isPairedClose(prev, fragment):
		return XMLPairedTag
	case reElementStart.MatchString(fragment):
		switch {
		case strings.Contains(fragment, "</"):
			return XMLInlineTag
		case strings.Contains(fragment, "/>"):
			return XMLSelfClosingTag
		default:
			return XMLOpenTag
		}
	case strings.Contains(fragment, "</"):
		return XMLCloseTag
	case strings.Contains(fragment, "/>"):
		return XMLSelfClosingTag
	case strings.Contains(fragment, "<?"):
		return XMLProcessingInstruction
	case strings.Contains(fragment, "xmlns:"), strings.Contains(fragment, "xmlns="):
		return XMLNamespaceDecl
	default:
		return XMLText
	}
}

func closesComment(fragment string) bool {
	return strings.Contains(fragment, "-->") || strings.Contains(fragment, "]>")
}

func isPairedClose(prev, fragment string) bool {
	open := reOpenName.FindStringSubmatch(prev)
	if open == nil {
		return false
	}

	closing := reCloseName.FindStringSubmatch(fragment)
	return closing != nil && closing[1] == open[1]
}

// Step is the outcome of classifying one fragment: whether it is written on a
// fresh indented line, how it moves the depth, and whether the walker is inside
// a comment once it has been written.
type Step struct {
	Indent    bool
	Action    DepthAction
	InComment bool
}

type commentEffect int

const (
	commentKeep commentEffect = iota
	commentEnter
	commentLeave
)

type xmlTransition struct {
	indent  bool
	action  DepthAction
	comment commentEffect
	// opaque transitions collapse to a raw, depth-neutral write inside a comment.
	opaque bool
}

var xmlTransitions = map[XMLKind]xmlTransition{
	XMLText:                  {},
	XMLComment:               {indent: true, comment: commentLeave},
	XMLCommentOpen:           {indent: true, comment: commentEnter},
	XMLCommentClose:          {comment: commentLeave},
	XMLPairedTag:             {action: EmitThenDecrement, opaque: true},
	XMLOpenTag:               {indent: true, action: EmitThenIncrement, opaque: true},
	XMLInlineTag:             {indent: true, opaque: true},
	XMLCloseTag:              {indent: true, action: DecrementThenEmit, opaque: true},
	XMLSelfClosingTag:        {indent: true, opaque: true},
	XMLProcessingInstruction: {indent: true},
	XMLNamespaceDecl:         {indent: true},
}

// XMLStep returns the transition for a fragment of the given kind.
func XMLStep(kind XMLKind, inComment bool) Step {
	t := xmlTransitions[kind]

	next := inComment
	switch t.comment {
	case commentEnter:
		next = true
	case commentLeave:
		next = false
	}

	if inComment && t.opaque {
		return Step{InComment: next}
	}

	return Step{Indent: t.indent, Action: t.action, InComment: next}
}

type xmlWalker struct {
	depth     int
	inComment bool
	prev      string
}

func (w *xmlWalker) walk(e *emitter, fragments []string) error {
	for _, fragment := range fragments {
		step := XMLStep(ClassifyXML(w.prev, fragment), w.inComment)

		w.depth += step.Action.Before()
		if step.Indent {
			if err := e.indented(w.depth, fragment); err != nil {
				return err
			}
		} else {
			e.raw(fragment)
		}
		w.depth += step.Action.After()

		w.inComment = step.InComment
		w.prev = fragment
	}

	return nil
}

// XML re-indents text one element per line. Malformed nesting never fails; it
// only degrades the layout.
func (f *Formatter) XML(text string) (string, error) {
	e := newEmitter(f.table, 2*len(text))

	var w xmlWalker
	if err := w.walk(e, SplitXML(text)); err != nil {
		return "", err
	}

	return strings.TrimPrefix(e.String(), "\n"), nil
}
