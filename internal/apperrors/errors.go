package apperrors

// 错误码
const (
	ErrCodeNameEmpty = iota + 1000
	ErrCodeNameTooLong
	ErrCodeNameInvalid
	ErrCodeBotsEmpty
	ErrCodeBotsNotNumber
	ErrCodeBotsOutOfRange
	ErrCodeBetNotNumber
	ErrCodeBetNotPositive
	ErrCodeBetTooLarge
	ErrCodeRoundNotDealt
	ErrCodeSessionOver
	ErrCodeRoundInProgress
)

// GameError 游戏错误
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrNameEmpty       = &GameError{Code: ErrCodeNameEmpty, Message: "please enter a name"}
	ErrNameTooLong     = &GameError{Code: ErrCodeNameTooLong, Message: "name is too long"}
	ErrNameInvalid     = &GameError{Code: ErrCodeNameInvalid, Message: "name contains unprintable characters"}
	ErrBotsEmpty       = &GameError{Code: ErrCodeBotsEmpty, Message: "please enter the number of bots"}
	ErrBotsNotNumber   = &GameError{Code: ErrCodeBotsNotNumber, Message: "number of bots must be a whole number"}
	ErrBotsOutOfRange  = &GameError{Code: ErrCodeBotsOutOfRange, Message: "number of bots is out of range"}
	ErrBetNotNumber    = &GameError{Code: ErrCodeBetNotNumber, Message: "bet must be a whole number"}
	ErrBetNotPositive  = &GameError{Code: ErrCodeBetNotPositive, Message: "bet must be greater than zero"}
	ErrBetTooLarge     = &GameError{Code: ErrCodeBetTooLarge, Message: "bet exceeds your bankroll"}
	ErrRoundNotDealt   = &GameError{Code: ErrCodeRoundNotDealt, Message: "round has not been dealt"}
	ErrSessionOver     = &GameError{Code: ErrCodeSessionOver, Message: "session is over"}
	ErrRoundInProgress = &GameError{Code: ErrCodeRoundInProgress, Message: "round is dealt but not resolved"}
)
