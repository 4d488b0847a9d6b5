// Package msgbus delivers training diagnostics from the booster to the
// reporting sinks. Delivery is synchronous and in registration order, so
// subscribers observe rounds in the order they were trained.
package msgbus

import (
	"sync"

	"adaboost/common"
)

type BusMessage struct {
	MsgType common.LocalMsgType
	RunID   string
	Msg     interface{}
}

type Subscriber interface {
	HandleMsgFromMsgBus(msg *BusMessage) error
}

type MessageBus interface {
	Register(topic common.LocalMsgType, sub Subscriber)
	UnRegister(topic common.LocalMsgType, sub Subscriber)
	Publish(runID string, t common.LocalMsgType, payload interface{})
	Reset()
}

// topic fans a message out to the subscribers of one first-class type.
type topic struct {
	mutex sync.RWMutex
	subs  []Subscriber
}

func (t *topic) register(sub Subscriber) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	for _, s := range t.subs {
		if s == sub {
			return
		}
	}
	t.subs = append(t.subs, sub)
}

func (t *topic) unRegister(sub Subscriber) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	for i, s := range t.subs {
		if s == sub {
			t.subs = append(t.subs[:i:i], t.subs[i+1:]...)
			return
		}
	}
}

func (t *topic) snapshot() []Subscriber {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.subs
}

type messageBusImpl struct {
	mutex  sync.RWMutex
	topics map[common.LocalMsgType]*topic
	log    common.Logger
}

func NewMessageBus(log common.Logger) MessageBus {
	if log == nil {
		log = common.GetLogger(common.MODULE_MSGBUS)
	}
	return &messageBusImpl{topics: make(map[common.LocalMsgType]*topic), log: log}
}

func (mb *messageBusImpl) Register(t common.LocalMsgType, sub Subscriber) {
	mb.mutex.Lock()
	tp, ok := mb.topics[t.Type()]
	if !ok {
		tp = &topic{}
		mb.topics[t.Type()] = tp
	}
	mb.mutex.Unlock()
	tp.register(sub)
}

func (mb *messageBusImpl) UnRegister(t common.LocalMsgType, sub Subscriber) {
	mb.mutex.RLock()
	tp, ok := mb.topics[t.Type()]
	mb.mutex.RUnlock()
	if ok {
		tp.unRegister(sub)
	}
}

// Publish hands the message to every subscriber before returning. Subscriber
// errors are logged and never reach the publisher.
func (mb *messageBusImpl) Publish(runID string, t common.LocalMsgType, payload interface{}) {
	mb.mutex.RLock()
	tp, ok := mb.topics[t.Type()]
	mb.mutex.RUnlock()
	if !ok {
		mb.log.Debugf("no subscriber for topic %s", t)
		return
	}

	msg := &BusMessage{MsgType: t, RunID: runID, Msg: payload}
	for _, sub := range tp.snapshot() {
		if err := sub.HandleMsgFromMsgBus(msg); err != nil {
			mb.log.Warnf("subscriber failed on %s: %s", t, err)
		}
	}
}

func (mb *messageBusImpl) Reset() {
	mb.mutex.Lock()
	defer mb.mutex.Unlock()
	mb.topics = make(map[common.LocalMsgType]*topic)
}
