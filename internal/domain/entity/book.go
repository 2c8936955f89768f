// Package entity contains the core business objects of the project.
package entity

// Book is a book tracked by the backpack's NFC scanner.
type Book struct {
	ID         string `json:"id"`          // Unique within the collection.
	Title      string `json:"title"`       // Display title.
	Author     string `json:"author"`      // Display author.
	IsRequired bool   `json:"is_required"` // Required books count towards packing progress.
	IsPresent  bool   `json:"is_present"`  // Whether the book is currently in the bag.
}
