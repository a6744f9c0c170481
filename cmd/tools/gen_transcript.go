package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"
)

// Deterministic synthetic chat export generator, used to build fixtures
// and benchmark inputs without shipping anyone's real conversation.

var authors = []string{"Alice", "Bruno", "Chiara"}

var lines = []string{
	"did you see the match last night",
	"that restaurant was amazing, we should go back",
	"I love this!! 😂😂",
	"not sure about tomorrow, traffic is terrible",
	"check this out https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	"running late, sorry",
	"the weather is awful today",
	"happy birthday!! 🎉🎉🎉",
	"this article is interesting https://medium.com/some-post",
	"<Media omitted>",
	"can you send me the address again?",
	"worst day ever, everything went wrong",
}

func main() {
	out := flag.String("out", "testdata/synthetic_chat.txt", "Output path")
	count := flag.Int("messages", 500, "Number of messages to generate")
	seed := flag.Int64("seed", 42, "Random seed (fixed by default for reproducible fixtures)")
	dashFormat := flag.Bool("dash", false, "Use the dash header convention instead of the bracketed one")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	ts := time.Date(2023, time.March, 4, 9, 15, 0, 0, time.UTC)

	var b strings.Builder
	b.WriteString("Messages and calls are end-to-end encrypted. No one outside of this chat can read them.\n")

	for i := 0; i < *count; i++ {
		author := authors[rng.Intn(len(authors))]
		body := lines[rng.Intn(len(lines))]

		// Occasional long silence so conversation initiations show up.
		if rng.Intn(20) == 0 {
			ts = ts.Add(time.Duration(2+rng.Intn(10)) * time.Hour)
		} else {
			ts = ts.Add(time.Duration(1+rng.Intn(40)) * time.Minute)
		}

		if *dashFormat {
			fmt.Fprintf(&b, "%s - %s: %s\n", ts.Format("2/1/2006, 15:04"), author, body)
		} else {
			fmt.Fprintf(&b, "[%s] %s: %s\n", ts.Format("2/1/2006, 15:04:05"), author, body)
		}

		// Occasional multi-line message to exercise reassembly.
		if rng.Intn(15) == 0 {
			b.WriteString("and one more thing\n")
			b.WriteString("on a second line\n")
		}
	}

	if err := os.WriteFile(*out, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d messages in %s\n", *count, *out)
}
