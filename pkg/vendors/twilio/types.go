package twilio

type Message struct {
	SID          string  `json:"sid"`
	AccountSID   string  `json:"account_sid"`
	To           string  `json:"to"`
	From         string  `json:"from"`
	Body         string  `json:"body"`
	Status       string  `json:"status"`
	Direction    string  `json:"direction"`
	NumSegments  string  `json:"num_segments"`
	Price        *string `json:"price,omitempty"`
	PriceUnit    *string `json:"price_unit,omitempty"`
	ErrorCode    *int    `json:"error_code,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`
	DateCreated  string  `json:"date_created"`
	DateSent     *string `json:"date_sent,omitempty"`
	URI          string  `json:"uri"`
}

// MessagePage is one page of a message listing.
type MessagePage struct {
	Messages        []Message `json:"messages"`
	Page            int       `json:"page"`
	PageSize        int       `json:"page_size"`
	FirstPageURI    string    `json:"first_page_uri"`
	NextPageURI     *string   `json:"next_page_uri"`
	PreviousPageURI *string   `json:"previous_page_uri"`
	URI             string    `json:"uri"`
}

// HasMore reports whether another page follows.
func (p *MessagePage) HasMore() bool {
	return p.NextPageURI != nil && *p.NextPageURI != ""
}

// ListMessagesOptions filters Messages.List. Nil fields are omitted.
type ListMessagesOptions struct {
	To       *string
	From     *string
	PageSize *int
}
