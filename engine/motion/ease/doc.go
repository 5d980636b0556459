/*
Package ease provides named easing curves.

Curves are addressed by names as known from web animation libraries, e.g.
"expo.out" or "back.out(1.7)". The Penner equations are taken from
github.com/tanema/gween/ease; the back family is parametrized here, as
animations use different overshoots.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ease
