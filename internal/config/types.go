package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// NetworkAddress адрес, на котором слушает HTTP сервер
type NetworkAddress struct {
	Host string
	Port int
}

func (a NetworkAddress) String() string {
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set принимает "host:port", ":port" или просто номер порта
func (a *NetworkAddress) Set(value string) error {
	value = strings.TrimSpace(value)

	host, portStr := "", value
	if idx := strings.LastIndex(value, ":"); idx >= 0 {
		host, portStr = value[:idx], value[idx+1:]
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid network address %q: %w", value, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid network address %q: port out of range", value)
	}

	a.Host = host
	a.Port = port

	return nil
}

func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}

// URLPrefix базовый адрес фронтенда, на который ведут ссылки из писем
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	parsed, err := url.Parse(value)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("invalid URL prefix format: %s", value)
	}

	*p = URLPrefix(strings.TrimSuffix(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

// Link собирает ссылку вида <prefix>/<segment>/<segment>..., экранируя каждый сегмент
func (p URLPrefix) Link(segments ...string) string {
	var b strings.Builder
	b.WriteString(string(p))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
