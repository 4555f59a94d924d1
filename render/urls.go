package render

import (
	"fmt"
	"net/url"
)

func ImageURL(selection int) string {
	return fmt.Sprintf("/artworks/%d/image", selection)
}

func ScreenURL(screenID string) string {
	return "/screens/" + url.PathEscape(screenID)
}

func ActionURL(screenID string, action Action) string {
	return ScreenURL(screenID) + "/" + string(action)
}
