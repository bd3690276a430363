package skills_test

import (
	"fmt"

	"github.com/matzehuels/careermap/pkg/skills"
)

func ExampleClassify() {
	for _, s := range []string{"Python", "Docker", "Scrum", "Quantum Basket-Weaving"} {
		c := skills.Classify(s)
		fmt.Printf("%s: %s (level %d)\n", s, c.Name, c.Level)
	}
	// Output:
	// Python: Programming (level 1)
	// Docker: Cloud & DevOps (level 2)
	// Scrum: Management (level 3)
	// Quantum Basket-Weaving: Common (level 0)
}

func ExampleGroup() {
	for _, g := range skills.Group([]string{"Python", "React", "Communication", "Basket Weaving"}) {
		fmt.Println(g.Name, g.Skills)
	}
	// Output:
	// Programming Languages [Python]
	// Web Technologies [React]
	// Soft Skills [Communication]
	// Other Skills [Basket Weaving]
}
