package lasterror

/*
#cgo windows LDFLAGS: -lpthread

#include <pthread.h>
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

static pthread_once_t slot_once = PTHREAD_ONCE_INIT;
static pthread_key_t slot_key;
static pthread_mutex_t slot_mutex = PTHREAD_MUTEX_INITIALIZER;
static uint64_t slot_next;
static uint64_t *slot_exited;
static size_t slot_exited_len;
static size_t slot_exited_cap;

// Runs on the exiting thread for every thread that was handed a token
static void slot_thread_exit(void *value) {
	uint64_t token = *(uint64_t *)value;
	free(value);

	pthread_mutex_lock(&slot_mutex);
	if (slot_exited_len == slot_exited_cap) {
		size_t cap = slot_exited_cap == 0 ? 16 : slot_exited_cap * 2;
		uint64_t *grown = realloc(slot_exited, cap * sizeof(uint64_t));
		if (grown == NULL) {
			pthread_mutex_unlock(&slot_mutex);
			return;
		}
		slot_exited = grown;
		slot_exited_cap = cap;
	}
	slot_exited[slot_exited_len] = token;
	__atomic_store_n(&slot_exited_len, slot_exited_len + 1, __ATOMIC_RELEASE);
	pthread_mutex_unlock(&slot_mutex);
}

static void slot_init(void) {
	pthread_key_create(&slot_key, slot_thread_exit);
}

static uint64_t slot_token(int create) {
	pthread_once(&slot_once, slot_init);

	uint64_t *value = pthread_getspecific(slot_key);
	if (value != NULL) {
		return *value;
	}
	if (!create) {
		return 0;
	}

	value = malloc(sizeof(uint64_t));
	if (value == NULL) {
		return 0;
	}
	pthread_mutex_lock(&slot_mutex);
	*value = ++slot_next;
	pthread_mutex_unlock(&slot_mutex);

	if (pthread_setspecific(slot_key, value) != 0) {
		free(value);
		return 0;
	}
	return *value;
}

static size_t slot_exited_count(void) {
	return __atomic_load_n(&slot_exited_len, __ATOMIC_ACQUIRE);
}

static size_t slot_take_exited(uint64_t *out, size_t cap) {
	pthread_mutex_lock(&slot_mutex);
	size_t n = slot_exited_len < cap ? slot_exited_len : cap;
	size_t remaining = slot_exited_len - n;
	memcpy(out, slot_exited + remaining, n * sizeof(uint64_t));
	__atomic_store_n(&slot_exited_len, remaining, __ATOMIC_RELEASE);
	pthread_mutex_unlock(&slot_mutex);
	return n;
}
*/
import "C"

import (
	"unsafe"

	"github.com/austoonz/Convert/memutils"
	"github.com/cockroachdb/errors"
)

// threadToken identifies the calling OS thread for as long as that thread lives. Tokens are never reused,
// so a thread that starts after another one exits cannot pick up the exited thread's slot, even when the
// operating system hands out the same thread id again. With create unset, a thread that was never given a
// token gets 0.
func threadToken(create bool) uint64 {
	var flag C.int
	if create {
		flag = 1
	}

	token := uint64(C.slot_token(flag))
	if token == 0 && create {
		panic(errors.Wrap(memutils.ErrOutOfMemory, "failed to allocate thread slot token"))
	}
	return token
}

// exitedThreads returns the tokens of threads that exited since the last call
func exitedThreads() []uint64 {
	if C.slot_exited_count() == 0 {
		return nil
	}

	var tokens []uint64
	buffer := make([]uint64, 64)
	for {
		n := int(C.slot_take_exited((*C.uint64_t)(unsafe.Pointer(&buffer[0])), C.size_t(len(buffer))))
		tokens = append(tokens, buffer[:n]...)
		if n < len(buffer) {
			return tokens
		}
	}
}
