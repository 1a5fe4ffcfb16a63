package models

// Category is one entry of a user's category directory.
type Category struct {
	CategoryID string `firestore:"categoryId" json:"categoryId"`
	Name       string `firestore:"name" json:"name"`
	Color      string `firestore:"color" json:"color,omitempty"`
	ParentID   string `firestore:"parentId" json:"parentId,omitempty"`
}

// Payee is one entry of a user's payee directory.
type Payee struct {
	PayeeID string `firestore:"payeeId" json:"payeeId"`
	Name    string `firestore:"name" json:"name"`
}
