package dto

type LostItemCreateRequest struct {
	ItemName      string `json:"item_name"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	DateLost      string `json:"date_lost"`
	LocationLost  string `json:"location_lost"`
	StudentName   string `json:"student_name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	StudentID     string `json:"student_id"`
	ImageURL      string `json:"image_url"`
}

type FoundItemCreateRequest struct {
	ItemName      string `json:"item_name"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	DateFound     string `json:"date_found"`
	LocationFound string `json:"location_found"`
	FinderName    string `json:"finder_name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	StudentID     string `json:"student_id"`
	ImageURL      string `json:"image_url"`
}

// Update requests carry only the allow-listed mutable fields. Unknown keys
// are rejected at decode time; user_id is deliberately absent.
type LostItemUpdateRequest struct {
	ItemName      *string `json:"item_name"`
	Category      *string `json:"category"`
	Description   *string `json:"description"`
	DateLost      *string `json:"date_lost"`
	LocationLost  *string `json:"location_lost"`
	StudentName   *string `json:"student_name"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email"`
	StudentID     *string `json:"student_id"`
	ImageURL      *string `json:"image_url"`
	Status        *string `json:"status"`
}

type FoundItemUpdateRequest struct {
	ItemName      *string `json:"item_name"`
	Category      *string `json:"category"`
	Description   *string `json:"description"`
	DateFound     *string `json:"date_found"`
	LocationFound *string `json:"location_found"`
	FinderName    *string `json:"finder_name"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email"`
	StudentID     *string `json:"student_id"`
	ImageURL      *string `json:"image_url"`
	Status        *string `json:"status"`
}

// Fields collects the provided values keyed by column name.
func (r *LostItemUpdateRequest) Fields() map[string]interface{} {
	out := map[string]interface{}{}
	put(out, "item_name", r.ItemName)
	put(out, "category", r.Category)
	put(out, "description", r.Description)
	put(out, "date_lost", r.DateLost)
	put(out, "location_lost", r.LocationLost)
	put(out, "student_name", r.StudentName)
	put(out, "contact_number", r.ContactNumber)
	put(out, "email", r.Email)
	put(out, "student_id", r.StudentID)
	put(out, "image_url", r.ImageURL)
	put(out, "status", r.Status)
	return out
}

func (r *FoundItemUpdateRequest) Fields() map[string]interface{} {
	out := map[string]interface{}{}
	put(out, "item_name", r.ItemName)
	put(out, "category", r.Category)
	put(out, "description", r.Description)
	put(out, "date_found", r.DateFound)
	put(out, "location_found", r.LocationFound)
	put(out, "finder_name", r.FinderName)
	put(out, "contact_number", r.ContactNumber)
	put(out, "email", r.Email)
	put(out, "student_id", r.StudentID)
	put(out, "image_url", r.ImageURL)
	put(out, "status", r.Status)
	return out
}

func put(m map[string]interface{}, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}
