package model

import (
	"encoding/json"
	"time"
)

// DateLayout формат даты создания короткой ссылки в API
const DateLayout = "2006-01-02"

// Code короткий код ссылки
type Code string

func (c Code) String() string {
	return string(c)
}

// ShortLink представляет сокращённую ссылку и её счётчик переходов
type ShortLink struct {
	Full      string
	Short     Code
	Clicks    int64
	CreatedAt time.Time
}

type shortLinkJSON struct {
	Full      string `json:"full"`
	Short     string `json:"short"`
	Clicks    int64  `json:"clicks"`
	CreatedAt string `json:"createdAt"`
}

// MarshalJSON сериализует ссылку, отдавая дату создания в формате YYYY-MM-DD
func (l ShortLink) MarshalJSON() ([]byte, error) {
	return json.Marshal(shortLinkJSON{
		Full:      l.Full,
		Short:     string(l.Short),
		Clicks:    l.Clicks,
		CreatedAt: l.CreatedAt.UTC().Format(DateLayout),
	})
}

// UnmarshalJSON разбирает ссылку из формата API
func (l *ShortLink) UnmarshalJSON(data []byte) error {
	var raw shortLinkJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	createdAt, err := time.Parse(DateLayout, raw.CreatedAt)
	if err != nil {
		return err
	}

	*l = ShortLink{
		Full:      raw.Full,
		Short:     Code(raw.Short),
		Clicks:    raw.Clicks,
		CreatedAt: createdAt,
	}

	return nil
}

// GraphPoint количество ссылок, созданных за период (месяц или день)
type GraphPoint struct {
	Date     string `json:"date"`
	NoOfURLs int64  `json:"noOfUrls"`
}

// Today возвращает полночь текущего дня по UTC
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
