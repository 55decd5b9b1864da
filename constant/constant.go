package constant

const (
	EVENT_QUEUE_SIZE = 4
	MOUSE_BUTTONS    = 5
	KEY_COUNT        = 256
	WINDOW_TITLE     = "wsiwindow"
	WINDOW_WIDTH     = 640
	WINDOW_HEIGHT    = 480
	TARGET_FPS       = 60
)
