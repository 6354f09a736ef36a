// Package domain contains the training catalog's core entities: users,
// educational content, and the Program aggregate that groups content and
// keeps an enrollment roster. It has no knowledge of identifier generation,
// presentation, or any other infrastructure concern.
package domain
