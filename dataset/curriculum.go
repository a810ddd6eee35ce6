package dataset

import "errors"

// Sentinel errors for curriculum level management.
var (
	// ErrUnknownAttribute indicates the attribute name is not defined on
	// the curriculum.
	ErrUnknownAttribute = errors.New("dataset: unknown curriculum attribute")

	// ErrLevelRange indicates the level cursor was moved past either end of
	// the attribute's level list.
	ErrLevelRange = errors.New("dataset: curriculum level out of range")

	// ErrNoLevels indicates a scalar attribute was defined without levels.
	ErrNoLevels = errors.New("dataset: curriculum attribute has no levels")
)

// ScalarAttribute defines one tunable difficulty dial: an ordered list of
// levels and a rewrite applying the current level to a Config.
type ScalarAttribute struct {
	Name        string
	Description string
	Levels      []int
	Apply       func(level int, cfg *Config)
}

// Curriculum tracks a level cursor per attribute and rewrites base configs
// accordingly. Cursors start at the first (easiest) level.
type Curriculum struct {
	name    string
	attrs   []ScalarAttribute
	cursors map[string]int
}

// NewCurriculum builds a curriculum from its attribute definitions.
// Attributes without levels are a definition error.
func NewCurriculum(name string, attrs ...ScalarAttribute) (*Curriculum, error) {
	c := &Curriculum{name: name, attrs: attrs, cursors: make(map[string]int, len(attrs))}
	for _, a := range attrs {
		if len(a.Levels) == 0 {
			return nil, ErrNoLevels
		}
		c.cursors[a.Name] = 0
	}
	return c, nil
}

// Name returns the curriculum's name.
func (c *Curriculum) Name() string { return c.name }

// Level returns the current level value of the named attribute.
func (c *Curriculum) Level(attr string) (int, error) {
	a, cur, err := c.lookup(attr)
	if err != nil {
		return 0, err
	}
	return a.Levels[cur], nil
}

// Increment moves the named attribute one level up.
func (c *Curriculum) Increment(attr string) error {
	a, cur, err := c.lookup(attr)
	if err != nil {
		return err
	}
	if cur+1 >= len(a.Levels) {
		return ErrLevelRange
	}
	c.cursors[attr] = cur + 1
	return nil
}

// Decrement moves the named attribute one level down.
func (c *Curriculum) Decrement(attr string) error {
	_, cur, err := c.lookup(attr)
	if err != nil {
		return err
	}
	if cur == 0 {
		return ErrLevelRange
	}
	c.cursors[attr] = cur - 1
	return nil
}

// GenerateConfig rewrites base with every attribute's current level and
// returns the result. base itself is not modified.
func (c *Curriculum) GenerateConfig(base Config) Config {
	cfg := base
	for _, a := range c.attrs {
		a.Apply(a.Levels[c.cursors[a.Name]], &cfg)
	}
	return cfg
}

func (c *Curriculum) lookup(attr string) (ScalarAttribute, int, error) {
	cur, ok := c.cursors[attr]
	if !ok {
		return ScalarAttribute{}, 0, ErrUnknownAttribute
	}
	for _, a := range c.attrs {
		if a.Name == attr {
			return a, cur, nil
		}
	}
	return ScalarAttribute{}, 0, ErrUnknownAttribute
}

// NumStepsAttribute is the builtin difficulty dial: it drives MaxSteps
// through the base tier's 5..10 band.
const NumStepsAttribute = "num_steps"

// MultiStepReasoningCurriculum returns the builtin curriculum for the
// multi_step_reasoning dataset.
func MultiStepReasoningCurriculum() *Curriculum {
	c, err := NewCurriculum("MultiStepReasoningCurriculum", ScalarAttribute{
		Name:        NumStepsAttribute,
		Description: "Maximum number of steps in the puzzle",
		Levels:      []int{5, 6, 7, 8, 9, 10},
		Apply: func(level int, cfg *Config) {
			cfg.MaxSteps = level
		},
	})
	if err != nil {
		// Unreachable: the builtin definition always carries levels.
		panic(err)
	}
	return c
}
