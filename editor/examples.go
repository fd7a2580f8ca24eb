package editor

import (
	"fmt"
	"sort"
)

// InitialText is the text a new editor starts with.
const InitialText = "we shood buy an car."

// examples are texts showing typical kinds of errors.
var examples = map[string]string{
	"ex1": "We should buy a car.\n\nin conclusion, brutus strongly though that caeser was a bad leader.",
	"ex2": "when i got to the store i seen my friend. She say she don't got no money, but she wanted to buy apples oranges and bananas",
	"ex3": "Just over two months later, an attempt on his life would be made and failed. He quickly recovered and returned to duty, and this caused his popularity to sky rocket.\n\n" +
		"In conclusion, Brutus strongly though that caeser was a bad leader, which is why he was apart of his death.",
	"sva": "The list of items are on the table. Each of the dogs bark loudly at night.",
	"apostrophe": "The dog chased it's tail. Its almost two oclock.\nThe article contradicted it's own argument.\nIts best to do some research before deciding on a topic.\n\n" +
		"Many people make a tradition of going for a long walk on New Years Day to clear their heads for the months ahead.\nThe dogs bark was far worse than its bite.\n" +
		"Little girls clothing is on the first floor, and the mens department is on the second.",
	"punc": "After dinner we went for a walk it was cold outside however we stayed out anyway.",
	"commas": "The list of items, is on the table. We followed the list and bought apples peaches and bananas today.\n\n" +
		"Near a small stream at the bottom of the canyon park rangers discovered a gold mine.\n\n" +
		"Mary promised that she would be a good girl that she would not bite her brother and that she would not climb onto the television.\n\n" +
		"The instructor looked through his briefcase through his desk and around the office for the lost grade book.\n\n" +
		"Steven Smith whose show you like will host a party next week.",
	"caps": "yesterday i visited chicago and met dr. smith at o'hare airport.\n\n" +
		"An gift from france, the statue of liberty has welcomed immigrants and visitors to New york Harbor since 1886.",
	"pronouns":   "The movie turned out to be a blockbuster hit, who came as a surprise to critics.",
	"homophones": "I except your invitation to the wedding.\n\nThey went on a hike to watch for dear in the forest.\n\nThe puppy gave my finger a playful byte.",
	"plural": "Studies are showing that man process information differently from women.\n\nI wishes I could grant all your wish.\n\n" +
		"The bus was running late, which meant all the other bus were as well.",
	"hyphens":      "She jumped from a two story building.\n\nWe offer around the clock coverage.\n\nIf we split the bill evenly, we each owe thirty four dollars.",
	"misspellings": "I met Mathilde yesterday in Salt Lake City. They have the best bowling rink of all time imo.",
	"profane":      "That is your anus.",
}

// Example returns the example text for a key.
func Example(key string) (string, error) {
	text, ok := examples[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownExample, key)
	}
	return text, nil
}

// ExampleKeys returns the keys of all example texts, sorted.
func ExampleKeys() []string {
	keys := make([]string, 0, len(examples))
	for k := range examples {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
