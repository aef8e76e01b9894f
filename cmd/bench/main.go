package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"gitlab.com/dirk.krummacker/rolodex/internal/model"
	"gitlab.com/dirk.krummacker/rolodex/internal/rolodex"
)

// Usage example on the command line:
// > go run main.go
//
// The table shows the average duration of one operation in microseconds,
// including the rewrite of the whole contacts file after each mutation.
func main() {
	// Keep the table clean, only failures should reach the terminal.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: slog.LevelError})))

	dir, err := os.MkdirTemp("", "rolodex-bench")
	if err != nil {
		fmt.Println("could not create temp directory", err)
		panic(err)
	}
	defer os.RemoveAll(dir)

	fmt.Println()
	fmt.Println("  Elements       Add      Edit      Find    Delete ")
	fmt.Println("---------------------------------------------------")
	sizes := []int{1000, 5000, 10000, 50000, 100000}
	for _, loops := range sizes {
		rolo := rolodex.Open(filepath.Join(dir, fmt.Sprintf("bench-%d.json", loops)))
		fmt.Printf("%10d", loops)
		emails := make([]string, 0, loops)
		{
			// Add operations
			var duration int64
			for i := 0; i < loops; i++ {
				email := fmt.Sprintf("bench-%d@example.org", i)
				emails = append(emails, email)
				contact := model.Contact{
					Name:  "Marcus Antonius",
					Email: email,
					Phone: model.Optional("+39 999 777 555"),
				}
				duration += timed(func() {
					if _, err := rolo.Add(contact); err != nil {
						panic(err)
					}
				})
			}
			fmt.Printf("%10d", duration/int64(loops*1000))
		}
		{
			// Edit operations
			newPhone := "+39 111 222 333"
			var duration int64
			for _, email := range shuffledCopy(emails) {
				updates := rolodex.ContactUpdate{Phone: &newPhone}
				duration += timed(func() {
					if _, err := rolo.Edit(email, updates); err != nil {
						panic(err)
					}
				})
			}
			fmt.Printf("%10d", duration/int64(loops*1000))
		}
		{
			// Find operations
			var duration int64
			for _, email := range shuffledCopy(emails) {
				duration += timed(func() {
					if _, found := rolo.FindByEmail(email); !found {
						panic("contact disappeared: " + email)
					}
				})
			}
			fmt.Printf("%10d", duration/int64(loops*1000))
		}
		{
			// Delete operations
			var duration int64
			for _, email := range shuffledCopy(emails) {
				duration += timed(func() {
					if !rolo.Delete(email) {
						panic("contact disappeared: " + email)
					}
				})
			}
			fmt.Printf("%10d", duration/int64(loops*1000))
		}
		fmt.Println()
	}
}

func timed(f func()) int64 {
	before := time.Now().UnixNano()
	f()
	after := time.Now().UnixNano()
	return after - before
}

func shuffledCopy(emails []string) []string {
	shuffled := make([]string, len(emails))
	copy(shuffled, emails)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
