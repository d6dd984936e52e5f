package messages

import (
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/plazahq/api/internal/errors"
	"github.com/plazahq/api/internal/instance"
	"github.com/plazahq/api/internal/structures"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Options struct {
	File       string
	Prometheus instance.Prometheus
}

type messagesInst struct {
	file string
	prom instance.Prometheus

	mx  sync.Mutex
	log []structures.Message
}

// New sets up the message store, loading the log from the durable file.
// A missing or unreadable file is not an error; the log starts empty.
func New(opt Options) instance.Messages {
	m := &messagesInst{
		file: opt.File,
		prom: opt.Prometheus,
		log:  []structures.Message{},
	}

	data, err := os.ReadFile(opt.File)
	switch {
	case err == nil:
		if err = json.Unmarshal(data, &m.log); err != nil {
			zap.S().Warnw("messages, durable file is unreadable, starting empty",
				"file", opt.File,
				"error", err,
			)

			m.log = []structures.Message{}
		}
	case !os.IsNotExist(err):
		zap.S().Warnw("messages, couldn't open durable file, starting empty",
			"file", opt.File,
			"error", err,
		)
	}

	// ids are positional; reassert after load in case the file was
	// edited by hand
	for i := range m.log {
		m.log[i].ID = i
	}

	return m
}

func (m *messagesInst) List() []structures.Message {
	m.mx.Lock()
	defer m.mx.Unlock()

	out := make([]structures.Message, len(m.log))
	copy(out, m.log)

	return out
}

func (m *messagesInst) Add(username string, message string) (structures.Message, error) {
	if username == "" || message == "" {
		return structures.Message{}, errors.ErrMissingRequiredField().
			SetDetail("Both username and message are required").
			SetFields(errors.Fields{
				"username": username != "",
				"message":  message != "",
			})
	}

	m.mx.Lock()
	defer m.mx.Unlock()

	msg := structures.Message{
		ID:       len(m.log),
		Username: username,
		Message:  message,
	}

	m.log = append(m.log, msg)

	if err := m.persist(); err != nil {
		zap.S().Errorw("messages, failed to persist log",
			"file", m.file,
			"error", err,
		)

		// the in-memory log already holds the message; only durability
		// was lost
		return msg, errors.ErrPersistenceFailed()
	}

	m.prom.MessagesAppended().Inc()

	return msg, nil
}

func (m *messagesInst) Clear() error {
	m.mx.Lock()
	defer m.mx.Unlock()

	m.log = []structures.Message{}

	if err := m.persist(); err != nil {
		zap.S().Errorw("messages, failed to persist cleared log",
			"file", m.file,
			"error", err,
		)

		return errors.ErrPersistenceFailed()
	}

	m.prom.MessagesCleared().Inc()

	return nil
}

func (m *messagesInst) Ping() error {
	f, err := os.OpenFile(m.file, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}

	return f.Close()
}

// persist rewrites the full log to the durable file. Callers must hold
// the lock.
func (m *messagesInst) persist() error {
	data, err := json.Marshal(m.log)
	if err != nil {
		return err
	}

	tmp := m.file + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	if err = os.Rename(tmp, m.file); err != nil {
		return multierr.Append(err, os.Remove(tmp))
	}

	return nil
}
