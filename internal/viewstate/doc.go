// Package viewstate derives what a screen may offer from the session role.
// Every function is total over {volunteer, requester, unknown} and pure: an
// unrecognized or absent role yields the "no actions" result, never an error.
package viewstate
