package sem

import (
	"encoding/json"
	"fmt"

	"fml/common"
)

// JSON interchange form of the semantic tree. Every node is an object with
// a "kind" discriminator; this is a serialization of the input contract,
// not a markup syntax (markup parsing lives outside this module).

type jsonNode struct {
	Kind string `json:"kind"`

	// symbol / number / operator / accent
	Rune   string `json:"rune,omitempty"`
	Class  string `json:"class,omitempty"`
	Font   string `json:"font,omitempty"`
	Text   string `json:"text,omitempty"`
	Name   string `json:"name,omitempty"`
	Limits bool   `json:"limits,omitempty"`

	// fraction
	Num     *jsonNode `json:"num,omitempty"`
	Denom   *jsonNode `json:"denom,omitempty"`
	HasRule *bool     `json:"rule,omitempty"`

	// radical
	Radicand *jsonNode `json:"radicand,omitempty"`
	Index    *jsonNode `json:"index,omitempty"`

	// subsup
	Base *jsonNode `json:"base,omitempty"`
	Sub  *jsonNode `json:"sub,omitempty"`
	Sup  *jsonNode `json:"sup,omitempty"`

	// delim group / array delimiters
	Left    string    `json:"left,omitempty"`
	Right   string    `json:"right,omitempty"`
	Content *jsonNode `json:"content,omitempty"`

	// array
	Rows     [][]*jsonNode `json:"rows,omitempty"`
	ColSpecs []string      `json:"cols,omitempty"`
	Small    bool          `json:"small,omitempty"`

	// group
	Items []*jsonNode `json:"items,omitempty"`
}

// Unmarshal decodes the JSON interchange form into a semantic tree.
func Unmarshal(data []byte) (Node, error) {
	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return nil, fmt.Errorf("unable to decode semantic tree: %w", err)
	}
	return jn.node()
}

// Marshal encodes a semantic tree into the JSON interchange form.
func Marshal(n Node) ([]byte, error) {
	jn, err := fromNode(n)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(jn, "", "  ")
}

func oneRune(field, s string) (rune, error) {
	rs := []rune(s)
	if len(rs) != 1 {
		return 0, fmt.Errorf("field %q must hold exactly one rune, got %q", field, s)
	}
	return rs[0], nil
}

func optRune(field, s string) (rune, error) {
	if len(s) == 0 {
		return 0, nil
	}
	return oneRune(field, s)
}

func (jn *jsonNode) node() (Node, error) {
	if jn == nil {
		return nil, nil
	}
	switch jn.Kind {
	case "symbol":
		r, err := oneRune("rune", jn.Rune)
		if err != nil {
			return nil, err
		}
		class := common.ClassOrd
		if len(jn.Class) > 0 {
			var ok bool
			if class, ok = common.ParseSpacingClass(jn.Class); !ok {
				return nil, fmt.Errorf("unknown atom class %q", jn.Class)
			}
		}
		return &Symbol{Rune: r, Class: class, Font: jn.Font}, nil
	case "number":
		return &Number{Text: jn.Text, Font: jn.Font}, nil
	case "operator":
		return &Operator{Name: jn.Name, Limits: jn.Limits, Font: jn.Font}, nil
	case "fraction":
		num, err := jn.Num.node()
		if err != nil {
			return nil, err
		}
		denom, err := jn.Denom.node()
		if err != nil {
			return nil, err
		}
		hasRule := true
		if jn.HasRule != nil {
			hasRule = *jn.HasRule
		}
		return &Fraction{Num: num, Denom: denom, HasRule: hasRule}, nil
	case "radical":
		rad, err := jn.Radicand.node()
		if err != nil {
			return nil, err
		}
		idx, err := jn.Index.node()
		if err != nil {
			return nil, err
		}
		return &Radical{Radicand: rad, Index: idx}, nil
	case "subsup":
		base, err := jn.Base.node()
		if err != nil {
			return nil, err
		}
		sub, err := jn.Sub.node()
		if err != nil {
			return nil, err
		}
		sup, err := jn.Sup.node()
		if err != nil {
			return nil, err
		}
		return &SubSup{Base: base, Sub: sub, Sup: sup}, nil
	case "delim":
		content, err := jn.Content.node()
		if err != nil {
			return nil, err
		}
		left, err := optRune("left", jn.Left)
		if err != nil {
			return nil, err
		}
		right, err := optRune("right", jn.Right)
		if err != nil {
			return nil, err
		}
		return &DelimGroup{Left: left, Content: content, Right: right}, nil
	case "accent":
		base, err := jn.Base.node()
		if err != nil {
			return nil, err
		}
		cmd, err := oneRune("rune", jn.Rune)
		if err != nil {
			return nil, err
		}
		return &Accent{Command: cmd, Base: base}, nil
	case "array":
		a := &Array{ColSpecs: jn.ColSpecs, Small: jn.Small}
		var err error
		if a.Left, err = optRune("left", jn.Left); err != nil {
			return nil, err
		}
		if a.Right, err = optRune("right", jn.Right); err != nil {
			return nil, err
		}
		for _, row := range jn.Rows {
			cells := make([]Node, 0, len(row))
			for _, cell := range row {
				n, err := cell.node()
				if err != nil {
					return nil, err
				}
				cells = append(cells, n)
			}
			a.Rows = append(a.Rows, cells)
		}
		return a, nil
	case "group":
		g := &Group{}
		for _, item := range jn.Items {
			n, err := item.node()
			if err != nil {
				return nil, err
			}
			g.Items = append(g.Items, n)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown node kind %q", jn.Kind)
	}
}

func fromNode(n Node) (*jsonNode, error) {
	if n == nil {
		return nil, nil
	}
	jn := &jsonNode{Kind: n.Kind()}
	var err error
	switch v := n.(type) {
	case *Symbol:
		jn.Rune = string(v.Rune)
		jn.Class = v.Class.String()
		jn.Font = v.Font
	case *Number:
		jn.Text = v.Text
		jn.Font = v.Font
	case *Operator:
		jn.Name = v.Name
		jn.Limits = v.Limits
		jn.Font = v.Font
	case *Fraction:
		if jn.Num, err = fromNode(v.Num); err != nil {
			return nil, err
		}
		if jn.Denom, err = fromNode(v.Denom); err != nil {
			return nil, err
		}
		hasRule := v.HasRule
		jn.HasRule = &hasRule
	case *Radical:
		if jn.Radicand, err = fromNode(v.Radicand); err != nil {
			return nil, err
		}
		if jn.Index, err = fromNode(v.Index); err != nil {
			return nil, err
		}
	case *SubSup:
		if jn.Base, err = fromNode(v.Base); err != nil {
			return nil, err
		}
		if jn.Sub, err = fromNode(v.Sub); err != nil {
			return nil, err
		}
		if jn.Sup, err = fromNode(v.Sup); err != nil {
			return nil, err
		}
	case *DelimGroup:
		if v.Left != 0 {
			jn.Left = string(v.Left)
		}
		if v.Right != 0 {
			jn.Right = string(v.Right)
		}
		if jn.Content, err = fromNode(v.Content); err != nil {
			return nil, err
		}
	case *Accent:
		jn.Rune = string(v.Command)
		if jn.Base, err = fromNode(v.Base); err != nil {
			return nil, err
		}
	case *Array:
		jn.ColSpecs = v.ColSpecs
		jn.Small = v.Small
		if v.Left != 0 {
			jn.Left = string(v.Left)
		}
		if v.Right != 0 {
			jn.Right = string(v.Right)
		}
		for _, row := range v.Rows {
			cells := make([]*jsonNode, 0, len(row))
			for _, cell := range row {
				c, err := fromNode(cell)
				if err != nil {
					return nil, err
				}
				cells = append(cells, c)
			}
			jn.Rows = append(jn.Rows, cells)
		}
	case *Group:
		for _, item := range v.Items {
			c, err := fromNode(item)
			if err != nil {
				return nil, err
			}
			jn.Items = append(jn.Items, c)
		}
	default:
		return nil, fmt.Errorf("unknown node type %T", n)
	}
	return jn, nil
}
