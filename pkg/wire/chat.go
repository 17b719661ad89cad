package wire

type ChatMessage struct {
	ID          string              `cbor:"id"`
	OrderID     string              `cbor:"orderId"`
	Creator     string              `cbor:"creator"`
	CreatedAt   int64               `cbor:"createdAt"`
	ModifiedAt  int64               `cbor:"modifiedAt"`
	ReplyToID   string              `cbor:"replyToMessageId,omitempty"`
	Message     *ChatMessageContent `cbor:"message,omitempty"`
	Attachments []*ChatAttachment   `cbor:"attachments,omitempty"`
	Reactions   *ChatReactions      `cbor:"reactions,omitempty"`
}

type ChatMessageContent struct {
	Text  string  `cbor:"text"`
	Style int32   `cbor:"style"`
	Marks []*Mark `cbor:"marks,omitempty"`
}

type ChatAttachment struct {
	Target string `cbor:"target"`
	Type   int32  `cbor:"type"`
}

// ChatReactions maps an emoji to the identities that reacted with it.
type ChatReactions struct {
	Reactions map[string]*IdentityList `cbor:"reactions,omitempty"`
}

type IdentityList struct {
	IDs []string `cbor:"ids,omitempty"`
}
