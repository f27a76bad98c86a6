package dto

type SelectAnswerRequest struct {
	AnswerId string `json:"answerId" validate:"required"`
}

type OtherTextRequest struct {
	Text string `json:"text"`
}
