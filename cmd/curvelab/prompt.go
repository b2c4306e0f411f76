package main

import "fmt"

// prompt is a modal two-field coordinate entry. It asks for X, then Y.
type prompt struct {
	active bool
	field  int
	text   [2][]rune
}

// promptKeys is the input relevant to a prompt during one update.
type promptKeys struct {
	chars     []rune
	enter     bool
	escape    bool
	backspace bool
}

func (p *prompt) open() {
	p.active = true
	p.field = 0
	p.text[0] = p.text[0][:0]
	p.text[1] = p.text[1][:0]
}

// update feeds one update's worth of input to the prompt. When the prompt
// closes, done is true and x and y are the answers; both are nil if the
// prompt was cancelled.
func (p *prompt) update(k promptKeys) (done bool, x, y *string) {
	if !p.active {
		return false, nil, nil
	}
	if k.escape {
		p.active = false
		return true, nil, nil
	}
	for _, r := range k.chars {
		if r >= ' ' && r != 0x7f {
			p.text[p.field] = append(p.text[p.field], r)
		}
	}
	if k.backspace && len(p.text[p.field]) > 0 {
		p.text[p.field] = p.text[p.field][:len(p.text[p.field])-1]
	}
	if k.enter {
		if p.field == 0 {
			p.field = 1
			return false, nil, nil
		}
		p.active = false
		xs, ys := string(p.text[0]), string(p.text[1])
		return true, &xs, &ys
	}
	return false, nil, nil
}

func (p *prompt) label() string {
	name := "X"
	if p.field == 1 {
		name = "Y"
	}
	return fmt.Sprintf("Enter %s coordinate: %s_   (Enter to confirm, Esc to cancel)", name, string(p.text[p.field]))
}
