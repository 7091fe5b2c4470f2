// Command convertcore is built with -buildmode=c-shared into the native library loaded by the host. Every
// exported function converts its C arguments and delegates to package abi.
//
// Pointers returned by functions that produce text must be released with free_string. Pointers returned by
// functions that produce bytes must be released with free_bytes. After a function returns its failure
// sentinel, get_last_error on the same thread describes the failure.
package main

/*
#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"github.com/austoonz/Convert/abi"
)

func sizeOut(p *C.size_t) *uintptr {
	return (*uintptr)(unsafe.Pointer(p))
}

//export free_bytes
func free_bytes(ptr *C.uint8_t) {
	abi.FreeBytes(unsafe.Pointer(ptr))
}

//export free_string
func free_string(ptr *C.char) {
	abi.FreeString(unsafe.Pointer(ptr))
}

//export get_last_error
func get_last_error() *C.char {
	return (*C.char)(abi.GetLastError())
}

//export memory_stats
func memory_stats() *C.char {
	return (*C.char)(abi.MemoryStats())
}

//export string_to_bytes_copy
func string_to_bytes_copy(input *C.char, outLength *C.size_t) *C.uint8_t {
	return (*C.uint8_t)(abi.StringToBytesCopy(unsafe.Pointer(input), sizeOut(outLength)))
}

//export string_to_base64
func string_to_base64(input *C.char, encoding *C.char) *C.char {
	return (*C.char)(abi.StringToBase64(unsafe.Pointer(input), unsafe.Pointer(encoding)))
}

//export base64_to_string
func base64_to_string(input *C.char, encoding *C.char) *C.char {
	return (*C.char)(abi.Base64ToString(unsafe.Pointer(input), unsafe.Pointer(encoding)))
}

//export base64_to_string_lenient
func base64_to_string_lenient(input *C.char, encoding *C.char) *C.char {
	return (*C.char)(abi.Base64ToStringLenient(unsafe.Pointer(input), unsafe.Pointer(encoding)))
}

//export bytes_to_base64
func bytes_to_base64(data *C.uint8_t, length C.size_t) *C.char {
	return (*C.char)(abi.BytesToBase64(unsafe.Pointer(data), uintptr(length)))
}

//export base64_to_bytes
func base64_to_bytes(input *C.char, outLength *C.size_t) *C.uint8_t {
	return (*C.uint8_t)(abi.Base64ToBytes(unsafe.Pointer(input), sizeOut(outLength)))
}

//export string_to_bytes
func string_to_bytes(input *C.char, encoding *C.char, outLength *C.size_t) *C.uint8_t {
	return (*C.uint8_t)(abi.StringToBytes(unsafe.Pointer(input), unsafe.Pointer(encoding), sizeOut(outLength)))
}

//export bytes_to_string
func bytes_to_string(data *C.uint8_t, length C.size_t, encoding *C.char) *C.char {
	return (*C.char)(abi.BytesToString(unsafe.Pointer(data), uintptr(length), unsafe.Pointer(encoding)))
}

//export bytes_to_string_lenient
func bytes_to_string_lenient(data *C.uint8_t, length C.size_t, encoding *C.char) *C.char {
	return (*C.char)(abi.BytesToStringLenient(unsafe.Pointer(data), uintptr(length), unsafe.Pointer(encoding)))
}

//export compute_hash
func compute_hash(input *C.char, algorithm *C.char, encoding *C.char) *C.char {
	return (*C.char)(abi.ComputeHash(unsafe.Pointer(input), unsafe.Pointer(algorithm), unsafe.Pointer(encoding)))
}

//export compute_hmac_with_encoding
func compute_hmac_with_encoding(input *C.char, key *C.uint8_t, keyLength C.size_t, algorithm *C.char, encoding *C.char) *C.char {
	return (*C.char)(abi.ComputeHMACWithEncoding(unsafe.Pointer(input), unsafe.Pointer(key), uintptr(keyLength),
		unsafe.Pointer(algorithm), unsafe.Pointer(encoding)))
}

//export compute_hmac_bytes
func compute_hmac_bytes(input *C.uint8_t, inputLength C.size_t, key *C.uint8_t, keyLength C.size_t, algorithm *C.char) *C.char {
	return (*C.char)(abi.ComputeHMACBytes(unsafe.Pointer(input), uintptr(inputLength), unsafe.Pointer(key), uintptr(keyLength),
		unsafe.Pointer(algorithm)))
}

//export compress_string
func compress_string(input *C.char, encoding *C.char, outLength *C.size_t) *C.uint8_t {
	return (*C.uint8_t)(abi.CompressString(unsafe.Pointer(input), unsafe.Pointer(encoding), sizeOut(outLength)))
}

//export decompress_string
func decompress_string(data *C.uint8_t, length C.size_t, encoding *C.char) *C.char {
	return (*C.char)(abi.DecompressString(unsafe.Pointer(data), uintptr(length), unsafe.Pointer(encoding)))
}

//export decompress_string_lenient
func decompress_string_lenient(data *C.uint8_t, length C.size_t, encoding *C.char) *C.char {
	return (*C.char)(abi.DecompressStringLenient(unsafe.Pointer(data), uintptr(length), unsafe.Pointer(encoding)))
}

//export base64_to_decompressed_string
func base64_to_decompressed_string(input *C.char, encoding *C.char) *C.char {
	return (*C.char)(abi.Base64ToDecompressedString(unsafe.Pointer(input), unsafe.Pointer(encoding)))
}

//export base64_to_decompressed_string_lenient
func base64_to_decompressed_string_lenient(input *C.char, encoding *C.char) *C.char {
	return (*C.char)(abi.Base64ToDecompressedStringLenient(unsafe.Pointer(input), unsafe.Pointer(encoding)))
}

//export url_encode
func url_encode(input *C.char) *C.char {
	return (*C.char)(abi.URLEncode(unsafe.Pointer(input)))
}

//export url_decode
func url_decode(input *C.char) *C.char {
	return (*C.char)(abi.URLDecode(unsafe.Pointer(input)))
}

//export to_unix_time
func to_unix_time(year C.int32_t, month, day, hour, minute, second C.uint32_t, milliseconds C.bool) C.int64_t {
	return C.int64_t(abi.ToUnixTime(int32(year), uint32(month), uint32(day), uint32(hour), uint32(minute), uint32(second),
		bool(milliseconds)))
}

//export from_unix_time_ffi
func from_unix_time_ffi(timestamp C.int64_t, milliseconds C.bool, year *C.int32_t, month, day, hour, minute, second *C.uint32_t) C.bool {
	return C.bool(abi.FromUnixTime(int64(timestamp), bool(milliseconds),
		(*int32)(unsafe.Pointer(year)),
		(*uint32)(unsafe.Pointer(month)),
		(*uint32)(unsafe.Pointer(day)),
		(*uint32)(unsafe.Pointer(hour)),
		(*uint32)(unsafe.Pointer(minute)),
		(*uint32)(unsafe.Pointer(second))))
}

//export fahrenheit_to_celsius
func fahrenheit_to_celsius(fahrenheit C.double) C.double {
	return C.double(abi.FahrenheitToCelsius(float64(fahrenheit)))
}

//export celsius_to_fahrenheit
func celsius_to_fahrenheit(celsius C.double) C.double {
	return C.double(abi.CelsiusToFahrenheit(float64(celsius)))
}

func main() {}
