package entity

type SignUpResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type SignInResponse struct {
	Token string `json:"token"`
}

type SwipeResponse struct {
	Outcome     string       `json:"outcome"`
	OutcomeEnum SwipeOutcome `json:"outcome_enum"`
	MatchID     uint         `json:"match_id,omitempty"`
}

type CandidatesResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type SelectionsResponse struct {
	RestaurantIDs []uint `json:"restaurant_ids"`
}

type MatchesResponse struct {
	Matches []Match `json:"matches"`
}

type MessagesResponse struct {
	Messages []Message `json:"messages"`
}

type RestaurantsResponse struct {
	Restaurants []Restaurant `json:"restaurants"`
}

type ReviewsResponse struct {
	Reviews []Review `json:"reviews"`
}

type ReservationsResponse struct {
	Reservations []Reservation `json:"reservations"`
}
