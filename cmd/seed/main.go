package main

import (
	"flag"
	"fmt"
	"os"

	"gitlab.com/dirk.krummacker/rolodex/internal/model"
	"gitlab.com/dirk.krummacker/rolodex/internal/randomgen"
	"gitlab.com/dirk.krummacker/rolodex/internal/rolodex"
)

// Usage example on the command line:
// > go run main.go -file=../../contacts.json -count=20
func main() {
	filePtr := flag.String("file", "contacts.json", "the contacts file to seed")
	countPtr := flag.Int("count", 0, "number of random contacts to add on top of the samples")
	forcePtr := flag.Bool("force", false, "seed even if the file already has contacts")
	flag.Parse()

	rolo := rolodex.Open(*filePtr)
	if rolo.Len() > 0 && !*forcePtr {
		fmt.Printf("%s already has %d contacts, use -force to seed anyway\n", *filePtr, rolo.Len())
		os.Exit(1)
	}

	added := 0
	for _, contact := range sampleContacts() {
		if _, err := rolo.Add(contact); err != nil {
			fmt.Println("skipped sample contact:", err)
			continue
		}
		added++
	}
	for i := 0; i < *countPtr; i++ {
		if _, err := rolo.Add(randomgen.Contact()); err != nil {
			fmt.Println("skipped random contact:", err)
			continue
		}
		added++
	}
	fmt.Printf("seeded %d contacts into %s\n", added, *filePtr)
}

// sampleContacts returns a handful of well known figures so a fresh rolodex
// has something to browse.
func sampleContacts() []model.Contact {
	return []model.Contact{
		{
			Name:      "Ada Lovelace",
			Email:     "ada@example.com",
			Address:   model.Optional("12 St James's Square, London"),
			Phone:     model.Optional("+44 20 7946 0958"),
			BirthDate: model.Optional("1815-12-10"),
		},
		{
			Name:      "José Piñera",
			Email:     "jose.pinera@example.cl",
			Address:   model.Optional("Avenida Apoquindo 3000, Santiago"),
			BirthDate: model.Optional("1948-10-06"),
		},
		{
			Name:      "Grace Hopper",
			Email:     "grace.hopper@example.mil",
			Phone:     model.Optional("+1 202 555 0147"),
			BirthDate: model.Optional("1906-12-09"),
		},
		{
			Name:      "Alan Turing",
			Email:     "alan.turing@example.org",
			Address:   model.Optional("Bletchley Park, Milton Keynes"),
			BirthDate: model.Optional("1912-06-23"),
		},
	}
}
