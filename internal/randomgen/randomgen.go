package randomgen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gitlab.com/dirk.krummacker/rolodex/internal/model"
)

// firstNames are the first names that PickFirstName chooses from.
var firstNames = []string{
	"Anton", "Berta", "Carla", "Dirk", "Erika", "Franz", "Gisela", "Hans",
	"Ines", "Jana", "Karl", "Lena", "Michael", "Nora", "Otto", "Paula",
	"Quirin", "Rudi", "Sabine", "Theo", "Ulrike", "Viktor", "Wanda",
	"Xaver", "Yvonne", "Zacharias",
}

// lastNames are the last names that PickLastName chooses from.
var lastNames = []string{
	"Bauer", "Fischer", "Hofmann", "Keller", "Koch", "Krause", "Lang",
	"Maier", "Mustermann", "Neumann", "Richter", "Schmidt", "Schneider",
	"Schulz", "Vogel", "Wagner", "Weber", "Winkler", "Wolf", "Zimmermann",
}

// streets and cities feed the generated addresses.
var streets = []string{
	"Hauptstrasse", "Bahnhofstrasse", "Gartenweg", "Lindenallee",
	"Marktplatz", "Schulstrasse", "Am Ring", "Wiesenweg",
}
var cities = []string{
	"Berlin", "Dresden", "Hamburg", "Köln", "Leipzig", "München", "Prag",
}

// PickFirstName returns a random first name.
func PickFirstName() string {
	return firstNames[rand.Intn(len(firstNames))]
}

// PickLastName returns a random last name.
func PickLastName() string {
	return lastNames[rand.Intn(len(lastNames))]
}

// Phone returns a random phone number in an international-looking format.
func Phone() string {
	return fmt.Sprintf("+49 %d %d", 100+rand.Intn(900), 100000+rand.Intn(900000))
}

// Address returns a random street address.
func Address() string {
	return fmt.Sprintf("%s %d, %s",
		streets[rand.Intn(len(streets))], 1+rand.Intn(150), cities[rand.Intn(len(cities))])
}

// BirthDate returns a random calendar-valid date between 1930 and 2005 in
// the contact file's date format.
func BirthDate() string {
	date := time.Date(1930+rand.Intn(76), time.Month(1+rand.Intn(12)), 1+rand.Intn(28),
		0, 0, 0, 0, time.UTC)
	return date.Format(model.BirthDateLayout)
}

// Email builds a plausible email address from the given names plus a random
// number that makes collisions between generated contacts unlikely.
func Email(firstName string, lastName string) string {
	return strings.ToLower(fmt.Sprintf("%s.%s-%d@example.org",
		firstName, lastName, rand.Intn(1000000)))
}

// Contact returns a fully populated random contact that passes all rolodex
// validation rules.
func Contact() model.Contact {
	firstName := PickFirstName()
	lastName := PickLastName()
	return model.Contact{
		Name:      firstName + " " + lastName,
		Address:   model.Optional(Address()),
		Phone:     model.Optional(Phone()),
		Email:     Email(firstName, lastName),
		BirthDate: model.Optional(BirthDate()),
	}
}
