package walk

// Dialogue is the typewriter text box.
//
// It has three phases: closed, typing, and awaiting advance (open, fully
// revealed). The revealed text is always a prefix of the target.
type Dialogue struct {
	target   []rune
	revealed int
	timer    float64
	Typing   bool
	Open     bool
}

// Show opens the box and starts typing text from an empty prefix.
func (d *Dialogue) Show(text string) {
	d.target = []rune(text)
	d.revealed = 0
	d.timer = 0
	d.Open = true
	d.Typing = len(d.target) > 0
}

// Target returns the full text being typed.
func (d *Dialogue) Target() string {
	return string(d.target)
}

// Revealed returns the text typed so far.
func (d *Dialogue) Revealed() string {
	return string(d.target[:d.revealed])
}

// AwaitingAdvance reports whether the box is open and fully typed.
func (d *Dialogue) AwaitingAdvance() bool {
	return d.Open && !d.Typing
}

// Skip reveals the rest of the text at once.
func (d *Dialogue) Skip() {
	d.revealed = len(d.target)
	d.Typing = false
}

// Close hides the box.
func (d *Dialogue) Close() {
	d.Open = false
	d.Typing = false
}

// Reset closes the box and forgets the text.
func (d *Dialogue) Reset() {
	*d = Dialogue{}
}

// advance moves the typewriter forward by scale reference ticks, revealing
// one rune every `every` reference ticks. Returns how many runes appeared.
func (d *Dialogue) advance(scale float64, every int) int {
	if !d.Typing {
		return 0
	}
	if every <= 0 {
		every = 1
	}
	d.timer += scale
	n := 0
	for d.timer >= float64(every) && d.revealed < len(d.target) {
		d.timer -= float64(every)
		d.revealed++
		n++
	}
	if d.revealed == len(d.target) {
		d.Typing = false
	}
	return n
}
