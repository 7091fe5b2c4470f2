// Package lasterror keeps the most recent failure message for each OS thread. Exported functions report
// failures by returning a null sentinel; the host then asks for the message on the same thread, so one
// thread's failure never overwrites another thread's diagnostic.
package lasterror

import (
	"sync"

	"github.com/austoonz/Convert/internal/utils"
	"github.com/dolthub/swiss"
)

// ChannelFlags indicate specific channel behaviors to activate or deactivate
type ChannelFlags int32

const (
	// ChannelExternallySynchronized disables the channel's internal lock. The consumer must guarantee the
	// channel is only used from one thread at a time.
	ChannelExternallySynchronized ChannelFlags = 1 << iota
)

func (f ChannelFlags) String() string {
	if f&ChannelExternallySynchronized != 0 {
		return "ChannelExternallySynchronized"
	}
	return "None"
}

// Channel maps OS threads to their pending error message. A thread with no entry has no pending error;
// Clear removes the entry, and the entry of a thread that exits is released on the channel's next call, so
// the table only ever holds live threads whose last call failed.
type Channel struct {
	mutex       utils.OptionalRWMutex
	slots       *swiss.Map[uint64, string]
	threadToken func(create bool) uint64
	exited      exitInbox
}

// exitInbox collects exited thread tokens for one channel until the channel next takes its own lock
type exitInbox struct {
	mutex  sync.Mutex
	tokens []uint64
}

func (i *exitInbox) push(tokens []uint64) {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	i.tokens = append(i.tokens, tokens...)
}

func (i *exitInbox) take() []uint64 {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	tokens := i.tokens
	i.tokens = nil
	return tokens
}

var channels struct {
	mutex sync.Mutex
	all   []*Channel
}

// reapExitedThreads hands the tokens of exited threads to every channel
func reapExitedThreads() {
	tokens := exitedThreads()
	if len(tokens) == 0 {
		return
	}

	channels.mutex.Lock()
	defer channels.mutex.Unlock()

	for _, channel := range channels.all {
		channel.exited.push(tokens)
	}
}

// NewChannel creates an empty Channel keyed by the calling thread
func NewChannel(flags ChannelFlags) *Channel {
	channel := &Channel{
		mutex:       utils.OptionalRWMutex{UseMutex: flags&ChannelExternallySynchronized == 0},
		slots:       swiss.NewMap[uint64, string](42),
		threadToken: threadToken,
	}

	channels.mutex.Lock()
	defer channels.mutex.Unlock()
	channels.all = append(channels.all, channel)

	return channel
}

// releaseExited drops the slots of exited threads. The caller holds the write lock.
func (c *Channel) releaseExited() {
	for _, token := range c.exited.take() {
		c.slots.Delete(token)
	}
}

// Set records message as the calling thread's last error, replacing any previous one
func (c *Channel) Set(message string) {
	reapExitedThreads()
	id := c.threadToken(true)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.releaseExited()
	c.slots.Put(id, message)
}

// Clear empties the calling thread's slot. Clearing an empty slot is a no-op.
func (c *Channel) Clear() {
	reapExitedThreads()
	id := c.threadToken(false)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.releaseExited()
	if id != 0 {
		c.slots.Delete(id)
	}
}

// Get returns the calling thread's last error without consuming it. Repeated calls return the same message
// until the slot is set or cleared again.
func (c *Channel) Get() (string, bool) {
	id := c.threadToken(false)
	if id == 0 {
		return "", false
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.slots.Get(id)
}

// Pending returns the number of live threads with an error waiting to be read
func (c *Channel) Pending() int {
	reapExitedThreads()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.releaseExited()
	return c.slots.Count()
}

var defaultChannel = NewChannel(0)

// Set records message as the calling thread's last error on the default channel
func Set(message string) {
	defaultChannel.Set(message)
}

// Clear empties the calling thread's slot on the default channel
func Clear() {
	defaultChannel.Clear()
}

// Get returns the calling thread's last error on the default channel
func Get() (string, bool) {
	return defaultChannel.Get()
}

// Pending returns the number of threads with an unread error on the default channel
func Pending() int {
	return defaultChannel.Pending()
}
