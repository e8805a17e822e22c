package entity

import (
	"context"
	"regexp"
)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (r *CreateUserRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Name == "" {
		problems["Name"] = append(problems["Name"], "Name is required")
	}
	if r.Email == "" {
		problems["Email"] = append(problems["Email"], "Email is required")
	}

	if r.Username == "" {
		problems["Username"] = append(problems["Username"], "Username is required")
	}

	if len(r.Username) > 16 {
		problems["Username"] = append(problems["Username"], "User name is too long")
	}

	if r.Password == "" {
		problems["Password"] = append(problems["Password"], "Password is required")
	}

	if len([]byte(r.Password)) > 72 {
		problems["Password"] = append(problems["Password"], "Password length should not exceed 72 bytes")
	}

	return problems
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (r *SignInRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Email == "" && r.Username == "" {
		problems["Email/Username"] = append(problems["Email/Username"], "Either Email or Username is required")
	}

	if r.Email != "" {
		emailRegex := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
		if !regexp.MustCompile(emailRegex).MatchString(r.Email) {
			problems["Email"] = append(problems["Email"], "Invalid email format")
		}
	}

	if r.Password == "" {
		problems["Password"] = append(problems["Password"], "Password is required")
	}

	return problems
}

type SwipeRequest struct {
	Direction Direction `json:"direction"`
}

func (r *SwipeRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if !r.Direction.Valid() {
		problems["Direction"] = append(problems["Direction"], "Direction must be left or right")
	}

	return problems
}

type ReplaceSelectionsRequest struct {
	RestaurantIDs []uint `json:"restaurant_ids"`
}

func (r *ReplaceSelectionsRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	for _, id := range r.RestaurantIDs {
		if id == 0 {
			problems["RestaurantIDs"] = append(problems["RestaurantIDs"], "Restaurant id must be positive")
			break
		}
	}

	return problems
}

type CreateRestaurantRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsBYOB      bool    `json:"is_byob"`
	Cuisine     string  `json:"cuisine"`
	Phone       string  `json:"phone"`
}

func (r *CreateRestaurantRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Name == "" {
		problems["Name"] = append(problems["Name"], "Name is required")
	}
	if r.Address == "" {
		problems["Address"] = append(problems["Address"], "Address is required")
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		problems["Latitude"] = append(problems["Latitude"], "Latitude is out of range")
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		problems["Longitude"] = append(problems["Longitude"], "Longitude is out of range")
	}

	return problems
}

type UpdateRestaurantRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Address     *string   `json:"address"`
	Cuisine     *string   `json:"cuisine"`
	Phone       *string   `json:"phone"`
	Website     *string   `json:"website"`
	IsBYOB      *bool     `json:"is_byob"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Photos      *[]string `json:"photos"`
	Features    *[]string `json:"features"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r *CreateReviewRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Rating < 1 || r.Rating > 5 {
		problems["Rating"] = append(problems["Rating"], "Rating must be between 1 and 5")
	}

	return problems
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

func (r *SendMessageRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Content == "" {
		problems["Content"] = append(problems["Content"], "Content is required")
	}

	return problems
}

type UpdateProfileRequest struct {
	Name          *string   `json:"name"`
	Bio           *string   `json:"bio"`
	AvatarURL     *string   `json:"avatar_url"`
	Age           *int      `json:"age"`
	Location      *string   `json:"location"`
	FavoriteDrink *string   `json:"favorite_drink"`
	Interests     *[]string `json:"interests"`
}
